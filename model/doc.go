// Package model defines the structured records produced by plan extraction:
// the plan itself, its weeks and day cells, classified workout segments with
// extracted metrics, and the glossary of term definitions.
package model
