// Package log builds the slog loggers used by xwpuz.
//
// Every logger returned here wraps its output handler in a SecureHandler,
// which masks values that look like credentials. Request headers and URLs
// are logged while fetching puzzles, and a configured Cookie or
// Authorization header must never end up in a terminal scrollback or a
// saved log file.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("fetching puzzle",
//	    "url", "https://www.xwordinfo.com/JSON/Data.aspx?date=3/7/2024",
//	    "cookie", "ASP.NET_SessionId=abc123", // logged as ***REDACTED***
//	)
package log
