// Package models contains the GORM models of the run history tables
// 'comparison_runs' and 'comparison_rows'.
package models
