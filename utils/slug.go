package utils

import (
	"regexp"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify chuẩn hóa nhãn người nhận thành slug ascii để làm khóa đối soát
// phía settlement: bỏ dấu, thường hóa, thay ký tự lạ bằng gạch ngang
func Slugify(label string) string {
	ascii := unidecode.Unidecode(label)
	ascii = strings.ToLower(strings.TrimSpace(ascii))
	ascii = nonSlugChars.ReplaceAllString(ascii, "-")
	return strings.Trim(ascii, "-")
}
