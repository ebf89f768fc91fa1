package bilag

// Summary counts what a conversion did with the transactions.
type Summary struct {
	Converted    map[Kind]int // transactions booked, per kind.
	Skipped      map[Kind]int // transactions dropped, per kind.
	Entries      int
	FirstVoucher int // 0 if no voucher was opened.
	LastVoucher  int
}

func newSummary() Summary {
	return Summary{Converted: make(map[Kind]int), Skipped: make(map[Kind]int)}
}

// Vouchers returns the number of vouchers opened.
func (s Summary) Vouchers() int {
	if s.FirstVoucher == 0 {
		return 0
	}
	return s.LastVoucher - s.FirstVoucher + 1
}

// Transactions returns the number of transactions processed.
func (s Summary) Transactions() int {
	n := 0
	for _, c := range s.Converted {
		n += c
	}
	for _, c := range s.Skipped {
		n += c
	}
	return n
}
