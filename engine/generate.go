package engine

import (
	"math/rand/v2"
	"os"
	"path/filepath"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Generate writes the benchmark fixtures into dir: n random letters, n A's,
// n random A/B characters and an empty file.
func Generate(dir string, n int, seed uint64) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	fixtures := []struct {
		name    string
		content []byte
	}{
		{"random.txt", randomFrom(rng, letters, n)},
		{"allAs.txt", randomFrom(rng, "A", n)},
		{"allABs.txt", randomFrom(rng, "AB", n)},
		{"empty.txt", nil},
	}
	var files []string
	for _, f := range fixtures {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.content, 0644); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

func randomFrom(rng *rand.Rand, alphabet string, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return out
}
