// Package locale 站点支持的语言
package locale

import (
	"github.com/pkg/errors"
	"strings"
	"sync"
)

type Locale string

var ErrUnsupportedLocale = errors.New("unsupported locale")

var (
	mu        sync.RWMutex
	def       Locale = "hu"
	supported        = []Locale{"hu", "en"}
)

// Init 设置默认语言与支持的语言列表，默认语言总会加入列表
func Init(defaultLocale string, locales []string) {
	d := normalize(defaultLocale)
	if len(d) == 0 {
		d = "hu"
	}
	ls := make([]Locale, 0, len(locales)+1)
	seen := map[Locale]bool{}
	for _, s := range locales {
		l := Locale(normalize(s))
		if len(l) == 0 || seen[l] {
			continue
		}
		seen[l] = true
		ls = append(ls, l)
	}
	if !seen[Locale(d)] {
		ls = append(ls, Locale(d))
	}
	mu.Lock()
	def = Locale(d)
	supported = ls
	mu.Unlock()
}

func Default() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return def
}

func Supported() []Locale {
	mu.RLock()
	defer mu.RUnlock()
	return append([]Locale{}, supported...)
}

func Parse(s string) (Locale, error) {
	n := Locale(normalize(s))
	mu.RLock()
	defer mu.RUnlock()
	for _, l := range supported {
		if l == n {
			return l, nil
		}
	}
	return "", errors.Wrapf(ErrUnsupportedLocale, "%q", s)
}

func (l Locale) String() string {
	return string(l)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
