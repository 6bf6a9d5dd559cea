// Package stylebook turns a documentation site into a small set of printable
// handbooks. It reads the site's sitemap, extracts the article body of each
// page, buckets pages into categories derived from their URL and renders one
// paginated document per category.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fpdf/, rod/).
package stylebook
