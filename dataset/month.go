package dataset

// MonthAbbrevs are the month column labels of the temperature source, in calendar order.
var MonthAbbrevs = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthFromAbbrev maps a three letter month label to 1..12.
func MonthFromAbbrev(abbrev string) (int, bool) {
	for i, m := range MonthAbbrevs {
		if m == abbrev {
			return i + 1, true
		}
	}
	return 0, false
}
