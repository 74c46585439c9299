package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/services"
)

// The page flow accepts form posts and answers with redirects; the
// outcome travels as a flash-style query parameter for the frontend
// to display.

func redirectWithError(c *fiber.Ctx, path string, err error) error {
	return c.Redirect(path+"?error="+url.QueryEscape(err.Error()), fiber.StatusFound)
}

func redirectWithMessage(c *fiber.Ctx, path, message string) error {
	return c.Redirect(path+"?message="+url.QueryEscape(message), fiber.StatusFound)
}

// RegisterForm handles the registration form
func RegisterForm(c *fiber.Ctx) error {
	user, err := services.RegisterUser(c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return redirectWithError(c, "/register", err)
	}

	services.LogAudit(user.ID, user.Username, models.AuditActionRegister, nil, "", c.IP())
	return redirectWithMessage(c, "/login", "Registration successful")
}

// LoginForm handles the login form and starts a session
func LoginForm(c *fiber.Ctx) error {
	user, err := services.LoginUser(c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return redirectWithError(c, "/login", err)
	}

	token, err := generateToken(user)
	if err != nil {
		return redirectWithError(c, "/login", err)
	}

	setSessionCookie(c, token)
	services.LogAudit(user.ID, user.Username, models.AuditActionLogin, nil, "", c.IP())
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// LogoutPage ends the session
func LogoutPage(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusFound)
}

// DashboardPage serves the dashboard payload for the page shell
func DashboardPage(c *fiber.Ctx) error {
	dashboard, err := services.BuildDashboard(middleware.GetUserID(c))
	if err != nil {
		return apiError(c, err, "Dashboard not found")
	}

	return c.JSON(dashboard)
}

// AddCategoryForm handles the add-category form
func AddCategoryForm(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	category, err := services.CreateCategory(userID, models.CategoryInput{
		Name:  c.FormValue("name"),
		Color: c.FormValue("color"),
	})
	if err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionCategoryCreate, &category.ID, "Created category: "+category.Name, c.IP())
	return redirectWithMessage(c, "/dashboard", "Category created")
}

// DeleteCategoryForm handles the delete-category form
func DeleteCategoryForm(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	if err := services.DeleteCategory(uint(categoryID), userID); err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	deletedID := uint(categoryID)
	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionCategoryDelete, &deletedID, "", c.IP())
	return redirectWithMessage(c, "/dashboard", "Category deleted")
}

// AddTransactionForm handles the add-transaction form
func AddTransactionForm(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	input, err := transactionInputFromForm(c)
	if err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	transaction, err := services.CreateTransaction(userID, input)
	if err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionTransactionCreate, &transaction.ID, "", c.IP())
	return redirectWithMessage(c, "/dashboard", "Transaction added")
}

// EditTransactionForm handles the edit-transaction form. Empty form
// fields are left untouched; a form cannot clear the category.
func EditTransactionForm(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	transactionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	patch, err := transactionPatchFromForm(c)
	if err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	if err := services.UpdateTransaction(uint(transactionID), userID, patch); err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	updatedID := uint(transactionID)
	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionTransactionUpdate, &updatedID, "", c.IP())
	return redirectWithMessage(c, "/dashboard", "Transaction updated")
}

// DeleteTransactionForm handles the delete-transaction form
func DeleteTransactionForm(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	transactionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	if err := services.DeleteTransaction(uint(transactionID), userID); err != nil {
		return redirectWithError(c, "/dashboard", err)
	}

	deletedID := uint(transactionID)
	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionTransactionDelete, &deletedID, "", c.IP())
	return redirectWithMessage(c, "/dashboard", "Transaction deleted")
}

func transactionInputFromForm(c *fiber.Ctx) (models.TransactionInput, error) {
	input := models.TransactionInput{
		Type:        c.FormValue("type"),
		Description: c.FormValue("description"),
		Date:        c.FormValue("date"),
	}

	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil {
		return input, &services.ValidationError{Message: "Invalid amount"}
	}
	input.Amount = amount

	if raw := c.FormValue("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return input, &services.ValidationError{Message: "Invalid category"}
		}
		id := uint(categoryID)
		input.CategoryID = &id
	}

	return input, nil
}

func transactionPatchFromForm(c *fiber.Ctx) (models.TransactionPatch, error) {
	var patch models.TransactionPatch

	if raw := c.FormValue("amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return patch, &services.ValidationError{Message: "Invalid amount"}
		}
		patch.Amount = &amount
	}
	if raw := c.FormValue("type"); raw != "" {
		patch.Type = &raw
	}
	if raw := c.FormValue("description"); raw != "" {
		patch.Description = &raw
	}
	if raw := c.FormValue("date"); raw != "" {
		patch.Date = &raw
	}
	if raw := c.FormValue("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return patch, &services.ValidationError{Message: "Invalid category"}
		}
		patch.CategoryID = models.OptionalID{Set: true, Valid: true, Value: uint(categoryID)}
	}

	return patch, nil
}
