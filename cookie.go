package litecoind

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// cookieCheckInterval is the minimum time between checks for a change to the
// cookie file.
const cookieCheckInterval = 30 * time.Second

// readCookieFile reads the credentials from the daemon's authentication
// cookie, which consists of a single "username:password" line.
func readCookieFile(path string) (username, password string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	s := strings.TrimSpace(string(b))
	username, password, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", fmt.Errorf("malformed cookie file (%s)", path)
	}

	return username, password, nil
}

// cookieRetriever returns a function that returns the credentials in the
// cookie file at path.
//
// The file is re-read when its modification time changes, which happens each
// time the daemon restarts. The modification time is checked at most once per
// cookieCheckInterval.
func cookieRetriever(path string) func() (username, password string, err error) {
	var (
		m             sync.Mutex
		lastCheckTime time.Time
		lastModTime   time.Time
		username      string
		password      string
		lastErr       error
	)

	return func() (string, string, error) {
		m.Lock()
		defer m.Unlock()

		if !lastCheckTime.IsZero() &&
			lastErr == nil &&
			time.Since(lastCheckTime) < cookieCheckInterval {
			return username, password, nil
		}

		lastCheckTime = time.Now()

		st, err := os.Stat(path)
		if err != nil {
			lastErr = err
			return "", "", err
		}

		if lastErr != nil || !st.ModTime().Equal(lastModTime) {
			lastModTime = st.ModTime()
			username, password, lastErr = readCookieFile(path)
		}

		return username, password, lastErr
	}
}
