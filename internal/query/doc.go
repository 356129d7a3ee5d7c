// Package query computes what the dashboard shows from a product collection:
// search and category filtering, optional sorting, and page slicing. Every
// function is pure; inputs are never modified and results are fresh values.
package query
