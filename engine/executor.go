// Copyright 2026 The Veil Authors
//
// Use of this source code is governed by an MIT license that is located
// in this project's root folder, and can also be found online at:
//
// https://github.com/veiltext/veil/LICENSE
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"strings"
	"sync"

	"github.com/veiltext/veil/cipher"
	"github.com/veiltext/veil/logger"
)

// DefaultWorkerCount is used when neither a flag nor the settings file
// provides a worker count.
const DefaultWorkerCount = 12

// Executor partitions input text into chunks, transforms the chunks on
// concurrent workers, and reassembles the results in submission order.  The
// partitioning honors each variant's declared ChunkAlignment, so the output
// is always byte-identical to a single sequential ApplyCipher call.
type Executor struct {
	workerCount int
}

// NewExecutor returns an executor running at most workerCount concurrent
// workers.  Counts below 1 are treated as 1.
func NewExecutor(workerCount int) *Executor {
	if workerCount < 1 {
		workerCount = 1
	}

	return &Executor{workerCount: workerCount}
}

// WorkerCount returns the effective worker count the executor runs with.
func (ex *Executor) WorkerCount() int {
	return ex.workerCount
}

// Run transforms text with the supplied cipher instance.  The cipher instance
// and its key material are read-only shared across all workers; each chunk
// result is written to its own slot, and nothing reads those slots until
// every worker has finished.
func (ex *Executor) Run(text string, ci cipher.Cipher, mode cipher.Mode) string {
	if text == "" {
		return ""
	}

	alignment := ci.ChunkAlignment()
	if alignment == 0 || ex.workerCount == 1 {
		// either the variant requires whole-message processing, or there is
		// no parallelism to be had anyway
		logger.Debugf("engine: sequential %s run over %d symbols\n", mode, len(text))
		return ci.ApplyCipher(text, mode)
	}

	chunks := splitChunks(text, ex.workerCount, alignment)
	logger.Debugf("engine: %s run over %d symbols in %d chunks (alignment %d)\n",
		mode, len(text), len(chunks), alignment)

	results := make([]string, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(slot int, chunk string) {
			defer wg.Done()
			results[slot] = ci.ApplyCipher(chunk, mode)
		}(i, chunk)
	}

	wg.Wait()

	// reassemble strictly in submission order, never completion order
	var sb strings.Builder
	sb.Grow(len(text))
	for _, result := range results {
		sb.WriteString(result)
	}

	return sb.String()
}

// splitChunks partitions text for workerCount workers.
//
// With alignment 1 every boundary is safe, so the text is divided as evenly
// as possible: the first len(text) mod workerCount chunks carry one extra
// symbol and the rest carry the base length.
//
// With alignment n > 1 the chunk length is the even split rounded up to the
// next multiple of n, so that no chunk starts mid-period.  The final chunk is
// simply whatever remains and may be shorter.
func splitChunks(text string, workerCount, alignment int) []string {
	if alignment > 1 {
		chunkLength := ((len(text)/alignment)/workerCount + 1) * alignment

		chunks := make([]string, 0, len(text)/chunkLength+1)
		for start := 0; start < len(text); start += chunkLength {
			end := start + chunkLength
			if end > len(text) {
				end = len(text)
			}

			chunks = append(chunks, text[start:end])
		}

		return chunks
	}

	baseLength := len(text) / workerCount
	extraCount := len(text) % workerCount

	chunks := make([]string, 0, workerCount)
	start := 0
	for i := 0; i < workerCount; i++ {
		chunkLength := baseLength
		if i < extraCount {
			chunkLength++
		}

		if chunkLength == 0 {
			// more workers than symbols; the remaining chunks would all be
			// empty
			break
		}

		chunks = append(chunks, text[start:start+chunkLength])
		start += chunkLength
	}

	return chunks
}
