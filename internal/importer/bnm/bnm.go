// Package bnm parses BNM account statements (CSV exports) into expense
// params. The bank has shipped at least two column layouts over the years;
// the parser matches headers against known profiles instead of assuming
// one.
package bnm

type Parser struct{}

func New() *Parser {
	return &Parser{}
}
