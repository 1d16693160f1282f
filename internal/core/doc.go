// Package core implements the spreadsheet import/export pipeline.
//
// It is independent of any transport: the CLI and the web server both
// drive it through [Service]. An import runs in three stages over the
// workbook sheets, in dependency order:
//
//  1. products  — upserted by name
//  2. customers — created unless the (email, phone) pair already exists
//  3. orders    — always created, resolving customer and product references
//
// Each stage reads its sheet, cleans and formats the rows (see the
// dataset package) and resolves every row against the store. The first
// row failure aborts the stage and with it the whole import; rows
// written by earlier stages stay committed. Sheet presence is checked
// before any stage runs, so a workbook missing a required sheet is
// rejected with zero mutations.
//
// Export is the inverse: [Service.ExportFile] and [Service.ExportTo]
// serialize the entire store into a three-sheet workbook whose columns
// line up with what the importer accepts, so an exported file can be
// imported back. Products and customers reconcile by natural key on
// such a round trip; orders, which have no natural key, are appended
// again.
package core
