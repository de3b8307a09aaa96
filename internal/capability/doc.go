// Package capability is the static table of which API version carries
// which operation and feature. The request builder consults it to shape
// requests and the facades consult it to fail fast; nothing else in the
// module knows version numbers. The relay's surface churns often — keeping
// that churn inside one table is the point of this package.
package capability
