// Package pmcompare provides a local, CLI-based reader and comparison tool
// for project-management standards (PMBOK, PRINCE2, ISO 21502) distributed
// as EPUB files. It imports standards into a local library, compares two
// chapters against a static topic taxonomy, and deep-links comparison
// results back into the chapter text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package pmcompare
