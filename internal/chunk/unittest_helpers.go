package chunk

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/go-faker/faker/v4"
)

// NaiveLCP is the reference lcp of a[i:] and b[j:], one byte at a time from
// offset 0.
func NaiveLCP(a []byte, i int, b []byte, j int) int {
	n := 0
	for i+n < len(a) && j+n < len(b) && a[i+n] == b[j+n] {
		n++
	}
	return n
}

func RandomQuote() string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}

	err := faker.FakeData(&quote)
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return quote.Sentence
}

// SeedRepetitiveText joins numSentences sentences picked from a dictionary of
// dictSize faker quotes. A small dictionary gives many long common prefixes,
// the input shape suffix sorting spends its time on.
func SeedRepetitiveText(rnd *rand.Rand, dictSize, numSentences int) []byte {
	dict := make([]string, dictSize)
	for i := range dict {
		dict[i] = RandomQuote()
	}

	var sb strings.Builder
	for i := 0; i < numSentences; i++ {
		sb.WriteString(dict[rnd.IntN(dictSize)])
		sb.WriteByte(' ')
	}
	return []byte(sb.String())
}

// RandomBytes returns n bytes drawn from the first alphabet byte values.
func RandomBytes(rnd *rand.Rand, n, alphabet int) []byte {
	res := make([]byte, n)
	for i := range res {
		res[i] = byte(rnd.IntN(alphabet))
	}
	return res
}

// NewRand returns a deterministic generator, so a failing case can be replayed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
