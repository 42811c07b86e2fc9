package check

import (
	"fmt"
	"strconv"

	"github.com/minio/highwayhash"
)

var fingerprintKey = []byte("AEMRULES0123456789ABCDEFGHIJKLMN")

// Issue represents a reported violation
type Issue struct {
	ID      string `yaml:"id" json:"id"`
	RuleKey string `yaml:"rule" json:"rule"`
	Path    string `yaml:"path" json:"path"`
	Line    int    `yaml:"line" json:"line"`
	Column  int    `yaml:"column" json:"column"`
	Offset  int    `yaml:"offset" json:"offset"`
	End     int    `yaml:"end" json:"end"`
	Message string `yaml:"message" json:"message"`
}

// Fingerprint returns a stable identifier derived from rule, path, source range and message
func (i *Issue) Fingerprint() string {
	sum, err := Hash([]byte(i.RuleKey + "|" + i.Path + "|" + strconv.Itoa(i.Offset) + ":" + strconv.Itoa(i.End) + "|" + i.Message))
	if err != nil {
		return i.RuleKey
	}
	return fmt.Sprintf("%s-%016x", i.RuleKey, sum)
}

// String returns path:line:column: [rule] message
func (i *Issue) String() string {
	return fmt.Sprintf("%s:%d:%d: [%s] %s", i.Path, i.Line, i.Column, i.RuleKey, i.Message)
}

// Hash returns a 64-bit HighwayHash of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
