package domain

import (
	"path"
	"strings"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// ParseWhitelist builds {class FQN -> wanted methods} from a flat FQN list.
// Class and method are split on the last dot; lines without one are returned
// as invalid.
func ParseWhitelist(content string) (m.Whitelist, []string) {
	wanted := m.Whitelist{}

	var invalid []string

	for _, id := range m.ParseFQNList(content) {
		idx := strings.LastIndex(id, ".")
		if idx <= 0 || idx == len(id)-1 {
			invalid = append(invalid, id)
			continue
		}

		class, method := id[:idx], strings.TrimSpace(id[idx+1:])

		if _, ok := wanted[class]; !ok {
			wanted[class] = m.NewMethodSet()
		}

		wanted[class].Add(method)
	}

	return wanted, invalid
}

// CandidatePaths maps a class FQN to its possible source paths under
// testRoot, Kotlin first.
func CandidatePaths(classFQN, testRoot string) []string {
	pkg, class := "", classFQN
	if idx := strings.LastIndex(classFQN, "."); idx >= 0 {
		pkg, class = classFQN[:idx], classFQN[idx+1:]
	}

	dir := path.Join(testRoot, strings.ReplaceAll(pkg, ".", "/"))

	candidates := make([]string, 0, len(m.SourceExtensions))
	for _, ext := range m.SourceExtensions {
		candidates = append(candidates, path.Join(dir, class+string(ext)))
	}

	return candidates
}
