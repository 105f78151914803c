package bnm

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column ("Montant", debits negative).
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of one BNM export format.
type Profile struct {
	Name       string
	DateCol    string
	LabelCol   string
	ReceiptCol string
	AmountMode amountMode
	AmountCol  string // used when AmountMode == amountSingle
	DebitCol   string // used when AmountMode == amountSplit
	CreditCol  string // used when AmountMode == amountSplit
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.LabelCol, p.ReceiptCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is tried in order; more specific layouts first.
var profiles = []Profile{
	{
		Name:       "releve",
		DateCol:    "Date opération",
		LabelCol:   "Libellé",
		ReceiptCol: "Référence",
		AmountMode: amountSplit,
		DebitCol:   "Débit",
		CreditCol:  "Crédit",
	},
	{
		Name:       "simple",
		DateCol:    "Date",
		LabelCol:   "Libellé",
		ReceiptCol: "Pièce",
		AmountMode: amountSingle,
		AmountCol:  "Montant",
	},
}
