package transfer

import "strings"

var userDataFiles = []string{
	"CCLocalLevels.dat",
	"CCLocalLevels2.dat",
	"CCGameManager.dat",
	"CCGameManager2.dat",
	"sfxlibrary.dat",
	"musiclibrary.dat",
}

// criticalFiles are always transferred, smart sync or not.
var criticalFiles = map[string]bool{
	"CCLocalLevels.dat":  true,
	"CCLocalLevels2.dat": true,
	"CCGameManager.dat":  true,
	"CCGameManager2.dat": true,
}

// Macro storage of the tobyadd.gdh mod. It can hold thousands of files and is
// never part of a save transfer.
var excludePatterns = []string{
	"geode/mods/tobyadd.gdh/Macros",
	"/geode/mods/tobyadd.gdh/Macros/",
	`\geode\mods\tobyadd.gdh\Macros\`,
	`geode\mods\tobyadd.gdh\Macros`,
}

// UserDataFiles returns the save files transferred in the userdata scope, in
// transfer order.
func UserDataFiles() []string {
	out := make([]string, len(userDataFiles))
	copy(out, userDataFiles)
	return out
}

// IsCritical reports whether name is one of the account or level save files.
func IsCritical(name string) bool {
	return criticalFiles[name]
}

// ShouldExclude reports whether path lies in an excluded directory.
func ShouldExclude(path string) bool {
	for _, p := range excludePatterns {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}
