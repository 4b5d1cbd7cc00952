// Package report builds summary artifacts from analysis results: a zone
// distribution bar chart and a one-page PDF report embedding the rendered
// heatmap, the chart and the per-foot classification table.
package report
