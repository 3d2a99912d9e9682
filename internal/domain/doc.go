// Package domain defines the core business entities of the blogging
// platform and the invariants they enforce.
package domain
