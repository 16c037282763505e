package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/drakos74/tumor-knn/internal/math/ml"
	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/floats"
)

const line = "------------------------------------------------"

// Evaluation renders the report of a single k to the writer.
func Evaluation(w io.Writer, e ml.Evaluation) {
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Computing for k=%d\n", e.K)
	fmt.Fprintf(w, "Sensitivity %% %s\n", e.Metrics.Sensitivity)
	fmt.Fprintf(w, "Specificity %% %s\n", e.Metrics.Specificity)
	fmt.Fprintf(w, "Accuracy is %s\n", e.Metrics.Accuracy)
	fmt.Fprintf(w, "Precision is %s\n", e.Metrics.Precision)
	Confusion(w, e.Confusion)
	fmt.Fprintf(w, "Conventional recall %s | specificity %s | f1 %s\n",
		e.Standard.Recall, e.Standard.Specificity, e.Standard.F1)
	fmt.Fprintln(w, e.Confusion.Summary())
}

// Confusion renders the confusion matrix, with predicted values as rows
// and actual values as columns.
func Confusion(w io.Writer, c ml.Confusion) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"predicted \\ actual", model.Malignant.String(), model.Benign.String()})
	table.Append([]string{model.Malignant.String(), strconv.Itoa(c.TP), strconv.Itoa(c.FP)})
	table.Append([]string{model.Benign.String(), strconv.Itoa(c.FN), strconv.Itoa(c.TN)})
	table.Render()
}

// Summary renders one line per k and a plot of the accuracy over k.
func Summary(w io.Writer, evaluations []ml.Evaluation) {
	if len(evaluations) == 0 {
		return
	}
	fmt.Fprintln(w, line)
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"k", "tp", "fp", "tn", "fn", "sensitivity %", "specificity %", "accuracy", "precision"})
	for _, e := range evaluations {
		table.Append([]string{
			strconv.Itoa(e.K),
			strconv.Itoa(e.Confusion.TP),
			strconv.Itoa(e.Confusion.FP),
			strconv.Itoa(e.Confusion.TN),
			strconv.Itoa(e.Confusion.FN),
			e.Metrics.Sensitivity.String(),
			e.Metrics.Specificity.String(),
			e.Metrics.Accuracy.String(),
			e.Metrics.Precision.String(),
		})
	}
	table.Render()

	if plot, ok := AccuracyPlot(evaluations); ok {
		fmt.Fprintln(w, plot)
	}
}

// AccuracyPlot plots the accuracy over the evaluated k values.
// It returns false if there is nothing meaningful to plot.
func AccuracyPlot(evaluations []ml.Evaluation) (string, bool) {
	if len(evaluations) < 2 {
		return "", false
	}
	series := make([]float64, len(evaluations))
	ks := ""
	for i, e := range evaluations {
		if !e.Metrics.Accuracy.Defined() {
			return "", false
		}
		series[i] = float64(e.Metrics.Accuracy)
		if i > 0 {
			ks += ","
		}
		ks += strconv.Itoa(e.K)
	}
	// a flat series has no range to scale on
	if floats.Max(series) == floats.Min(series) {
		return "", false
	}
	height := int(math.Min(10, float64(len(series))+2))
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("accuracy for k=[%s]", ks)),
	), true
}
