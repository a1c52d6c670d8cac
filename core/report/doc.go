// Package report renders batch comparison results.
//
// Each batch run produces a timestamped pair of artifacts,
// <prefix>_<HH-MM-SS_DD-MM-YYYY>.xlsx and .html, with one row per catalog
// item in catalog order. Rows cheaper on Discord are filled green (#99FF99),
// rows cheaper on the Marketplace red (#FF9999); undetermined rows are left
// plain and their missing figures blank.
//
// The workbook is written with excelize; the HTML table with html/template.
// Upload optionally publishes both files to object storage.
package report
