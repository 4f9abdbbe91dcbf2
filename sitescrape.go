// Package sitescrape fetches a sitemap, downloads a bounded number of the
// pages it lists, and reduces each page to a cleaned title and body text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, etree/, goquery/).
package sitescrape
