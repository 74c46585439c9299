package services

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderCategoryChart renders the owner's expense-by-category totals
// as a PNG pie chart. Returns nil when there is no expense data.
func RenderCategoryChart(userID uint) ([]byte, error) {
	totals, err := TotalsByCategory(userID)
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return nil, nil
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	// Stable slice order so repeated renders are identical
	sort.Strings(labels)

	values := make([]chart.Value, len(labels))
	for i, label := range labels {
		total := totals[label]
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s (%.2f)", label, total.Total),
			Value: total.Total,
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(strings.TrimPrefix(total.Color, "#")),
			},
		}
	}

	pie := chart.PieChart{
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render category chart: %w", err)
	}
	return buf.Bytes(), nil
}
