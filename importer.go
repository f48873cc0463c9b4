package fitlog

// Run imports rows from the export at sourcePath into the history file at
// historyPath and reports how many rows were appended. The merge is fully
// computed in memory before the history file is rewritten: on any error the
// file is left untouched.
func Run(sourcePath, historyPath string) (int, error) {
	history, err := LoadTable(historyPath)
	if err != nil {
		return 0, err
	}
	source, err := LoadTable(sourcePath)
	if err != nil {
		return 0, err
	}
	merged, added, err := Merge(history, source)
	if err != nil {
		return 0, err
	}
	if err := SaveTable(historyPath, merged); err != nil {
		return 0, err
	}
	return added, nil
}
