// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock carries optional function fields that
// override a map-backed default behavior.
package mocks
