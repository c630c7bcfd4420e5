package solar

import "fmt"

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DateLabel maps a day of year to a "D Mon" label using fixed non-leap-year
// month lengths. Days above 365 are a caller contract violation and are not
// wrapped.
func DateLabel(day int) string {
	month := 0
	for month < 11 && day > monthLengths[month] {
		day -= monthLengths[month]
		month++
	}
	return fmt.Sprintf("%d %s", day, monthNames[month])
}
