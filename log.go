package aabbtree

import "github.com/sirupsen/logrus"

// log is the package-level logger used for structural diagnostics: pool
// growth, rebuilds, and debug-validation misuse. It never fires on the
// insert/remove/query hot path.
var log = logrus.StandardLogger()

// SetLogger overrides the logger used by this package. Pass nil to
// restore the standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		log = logrus.StandardLogger()
		return
	}
	log = l
}
