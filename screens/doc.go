// Package screens contains modal layers drawn above the surfaces.
package screens
