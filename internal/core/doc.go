// Package core provides the geometry and cell types shared by views,
// drivers and the application runtime.
package core
