// Package dataset loads the monthly CO2 and temperature anomaly tables.
//
// # CO2
//
// The Mauna Loa monthly in-situ file from the Scripps CO2 program carries a long
// quoted preamble followed by a three line header. After skipping the preamble the
// first remaining line is treated as the header row and replaced by fixed column
// names. Missing measurements are written as -99.99.
//
// # Temperature
//
// The GISTEMP Northern Hemisphere file lays out one row per year with one column
// per month (Jan..Dec) followed by seasonal and annual means. Missing values are
// written as a run of asterisks. Rows are melted into one observation per month.
package dataset
