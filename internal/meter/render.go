package meter

import (
	"fmt"
	"sort"
	"strings"
)

// Render formats a rate table, one service per line in name order.
func Render(rates map[string]Rates) string {
	if len(rates) == 0 {
		return "no services observed\n"
	}

	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		builder.WriteString(fmt.Sprintf("%s: %.2f events/s, %.2f bytes/s\n",
			name, rates[name].Events, rates[name].Volume))
	}

	return builder.String()
}
