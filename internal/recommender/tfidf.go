package recommender

import (
	"math"
	"sort"
	"strings"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// Descriptive fields blended into the per-car feature text. Missing values
// are replaced with "Unknown" so every car contributes a full-length blob.
func featureText(c domain.Car) string {
	fields := []string{c.Make, c.Model, c.CarType, c.Transmission, c.FuelPolicy}
	for i, f := range fields {
		if strings.TrimSpace(f) == "" {
			fields[i] = "Unknown"
		}
	}
	return strings.Join(fields, " ")
}

// tokenize lowercases and splits on non-alphanumeric runs. Single-character
// tokens are dropped.
func tokenize(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	tokens := raw[:0]
	for _, t := range raw {
		if len(t) >= 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// tfidfVectors turns documents into L2-normalised TF-IDF vectors over a
// vocabulary derived purely from the documents themselves. Smoothed IDF:
// ln((1+n)/(1+df)) + 1. The vocabulary is sorted, so the output is fully
// deterministic for a given document list.
func tfidfVectors(docs []string) [][]float64 {
	tokenized := make([][]string, len(docs))
	vocabSet := make(map[string]struct{})
	for i, d := range docs {
		tokenized[i] = tokenize(d)
		for _, t := range tokenized[i] {
			vocabSet[t] = struct{}{}
		}
	}

	vocab := make([]string, 0, len(vocabSet))
	for t := range vocabSet {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)
	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	// Document frequency per term.
	df := make([]int, len(vocab))
	for _, toks := range tokenized {
		seen := make(map[string]struct{}, len(toks))
		for _, t := range toks {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			df[index[t]]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, toks := range tokenized {
		vec := make([]float64, len(vocab))
		for _, t := range toks {
			vec[index[t]]++
		}
		var norm float64
		for j := range vec {
			vec[j] *= idf[j]
			norm += vec[j] * vec[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// computeSimilarity builds the pairwise cosine similarity matrix over the
// candidate set's feature texts. Row order matches the candidate set's
// current order; the matrix is symmetric with a unit diagonal.
func computeSimilarity(cs *candidateSet) ([][]float64, error) {
	if cs == nil || len(cs.cars) == 0 {
		return nil, domain.Errf(domain.CodeNoCandidates, "No cars available for computing similarity.")
	}

	docs := make([]string, len(cs.cars))
	for i, c := range cs.cars {
		docs[i] = featureText(c)
	}
	vectors := tfidfVectors(docs)

	sim := make([][]float64, len(vectors))
	for i := range vectors {
		sim[i] = make([]float64, len(vectors))
		sim[i][i] = 1.0
	}
	// Vectors are unit length, so cosine reduces to the dot product.
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			s := dot(vectors[i], vectors[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim, nil
}
