package crawl

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// WriteSummary prints the report as aligned columns, listing per-category
// item counts in table order.
func WriteSummary(w io.Writer, report *Report, categories []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "URLs discovered\t%d\n", report.Discovered)
	fmt.Fprintf(tw, "Pages unclassified\t%d\n", report.Unclassified)
	fmt.Fprintf(tw, "Pages fetched\t%d\n", report.Fetched)
	fmt.Fprintf(tw, "Pages failed\t%d\n", report.Failed)
	fmt.Fprintf(tw, "Pages without content\t%d\n", report.NoContent)
	fmt.Fprintf(tw, "Items extracted\t%d\n", report.Items)
	for _, key := range categories {
		fmt.Fprintf(tw, "  %s\t%d\n", key, report.Counts[key])
	}
	fmt.Fprintf(tw, "Documents written\t%d (%s)\n", report.Written, FormatBytes(report.Bytes))
	fmt.Fprintf(tw, "Documents failed\t%d\n", report.WriteFailed)
	fmt.Fprintf(tw, "Items skipped\t%d\n", report.SkippedItems)
	return tw.Flush()
}
