package shellcheck

import (
	"fmt"
	"strings"
)

func (l *Linter) logStatus() {
	count := len(l.IgnoreCodes)
	rules := "rules"
	if count == 1 {
		rules = "rule"
	}
	l.logger.Info(fmt.Sprintf("active with %d ignore %s", count, rules), "executable", l.Executable, "source", string(l.Source))
	if count > 0 {
		l.logger.Info("ignoring", "codes", strings.Join(l.IgnoreCodes, ", "))
	}
}
