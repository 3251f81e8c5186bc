// Package tables turns page content into week records. Two strategies
// produce raw cell grids (ruled-line geometry first, text positions as the
// fallback for borderless layouts) and the Assembler validates grid
// headers, stitches wrapped continuation rows, and emits one raw record per
// training week.
package tables
