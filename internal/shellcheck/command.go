package shellcheck

// BuildCommand returns the shellcheck invocation: gcc output, script on stdin,
// and one -e flag per ignore code in the given order.
func BuildCommand(executable string, ignoreCodes []string) []string {
	cmd := make([]string, 0, 4+2*len(ignoreCodes))
	cmd = append(cmd, executable, "-f", "gcc", "-")
	for _, code := range ignoreCodes {
		cmd = append(cmd, "-e", code)
	}
	return cmd
}
