// Package version хранит сведения о сборке сервиса.
package version

import "fmt"

// Значения подставляются при сборке через
// -ldflags "-X github.com/vladislavdragonenkov/sales/internal/version.version=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info возвращает версию, коммит и дату сборки.
func Info() (v, c, d string) { return version, commit, date }

// String собирает сведения о сборке в одну строку для логов.
func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}
