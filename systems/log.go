package systems

import "github.com/charmbracelet/log"

var logger = log.WithPrefix("systems")

// SetLogger routes system logs through l.
func SetLogger(l *log.Logger) {
	logger = l.WithPrefix("systems")
}
