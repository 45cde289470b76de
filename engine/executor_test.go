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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veiltext/veil/cipher"
	"github.com/veiltext/veil/helpers"
)

// wholeMessageCipher stands in for a variant that declares it can never be
// chunked.  It records how often and with what input it was invoked.
type wholeMessageCipher struct {
	callCount int
	lastInput string
}

func (wmc *wholeMessageCipher) ApplyCipher(text string, mode cipher.Mode) string {
	wmc.callCount++
	wmc.lastInput = text
	return text
}

func (wmc *wholeMessageCipher) ChunkAlignment() int {
	return 0
}

func TestExecutorMatchesSequentialForShiftCipher(t *testing.T) {
	sc, err := cipher.NewShiftCipher("23")
	assert.Nil(t, err)

	// 1009 is prime, so every worker count below produces uneven chunks
	inputText, err := helpers.GetRandomText(cipher.AlphabetText, 1009)
	assert.Nil(t, err)

	sequential := sc.ApplyCipher(inputText, cipher.ModeEncrypt)

	for _, workerCount := range []int{1, 2, 3, 5, 12, 50, 1000, 2000} {
		t.Run(fmt.Sprintf("Workers%d", workerCount), func(t *testing.T) {
			parallel := NewExecutor(workerCount).Run(inputText, sc, cipher.ModeEncrypt)
			assert.Equal(t, sequential, parallel)
		})
	}
}

func TestExecutorMatchesSequentialForPolyShiftCipher(t *testing.T) {
	psc, err := cipher.NewPolyShiftCipher("hello")
	assert.Nil(t, err)

	// deliberately NOT a multiple of the key length, so the final chunk is a
	// partial period
	inputText, err := helpers.GetRandomText(cipher.AlphabetText, 1013)
	assert.Nil(t, err)

	sequential := psc.ApplyCipher(inputText, cipher.ModeEncrypt)

	for _, workerCount := range []int{1, 2, 3, 5, 12, 50, 1000} {
		t.Run(fmt.Sprintf("Workers%d", workerCount), func(t *testing.T) {
			parallel := NewExecutor(workerCount).Run(inputText, psc, cipher.ModeEncrypt)
			assert.Equal(t, sequential, parallel)
		})
	}
}

func TestExecutorRoundTripAcrossWorkerCounts(t *testing.T) {
	psc, err := cipher.NewPolyShiftCipher("stormy")
	assert.Nil(t, err)

	inputText, err := helpers.GetRandomText(cipher.AlphabetText, 577)
	assert.Nil(t, err)

	// encrypt and decrypt may legitimately run with different worker counts
	encrypted := NewExecutor(7).Run(inputText, psc, cipher.ModeEncrypt)
	decrypted := NewExecutor(3).Run(encrypted, psc, cipher.ModeDecrypt)
	assert.Equal(t, inputText, decrypted)
}

func TestExecutorNeverChunksWholeMessageVariants(t *testing.T) {
	wmc := &wholeMessageCipher{}

	const inputText = "SOMESORTOFLONGERMESSAGETEXTTHATWOULDOTHERWISEBESPLIT"
	result := NewExecutor(12).Run(inputText, wmc, cipher.ModeEncrypt)

	assert.Equal(t, inputText, result)
	assert.Equal(t, 1, wmc.callCount)
	assert.Equal(t, inputText, wmc.lastInput)
}

func TestExecutorEmptyInput(t *testing.T) {
	sc, err := cipher.NewShiftCipher("10")
	assert.Nil(t, err)

	for _, workerCount := range []int{1, 12, 100} {
		assert.Equal(t, "", NewExecutor(workerCount).Run("", sc, cipher.ModeEncrypt))
	}

	wmc := &wholeMessageCipher{}
	assert.Equal(t, "", NewExecutor(12).Run("", wmc, cipher.ModeEncrypt))
	assert.Equal(t, 0, wmc.callCount)
}

func TestExecutorShortInputWithManyWorkers(t *testing.T) {
	sc, err := cipher.NewShiftCipher("10")
	assert.Nil(t, err)

	// more workers than symbols; expected value is the known caesar vector
	result := NewExecutor(50).Run("HELLOWORLD", sc, cipher.ModeEncrypt)
	assert.Equal(t, "ROVVY6Y1VN", result)
}

func TestNewExecutorClampsWorkerCount(t *testing.T) {
	assert.Equal(t, 1, NewExecutor(0).WorkerCount())
	assert.Equal(t, 1, NewExecutor(-5).WorkerCount())
	assert.Equal(t, 12, NewExecutor(12).WorkerCount())
}

func TestSplitChunksCoversEverySymbolExactlyOnce(t *testing.T) {
	type TestVals struct {
		Name        string
		TextLength  int
		WorkerCount int
		Alignment   int
	}

	tests := []TestVals{
		{Name: "EvenSplit", TextLength: 120, WorkerCount: 12, Alignment: 1},
		{Name: "UnevenSplit", TextLength: 121, WorkerCount: 12, Alignment: 1},
		{Name: "FewerSymbolsThanWorkers", TextLength: 5, WorkerCount: 12, Alignment: 1},
		{Name: "AlignedSplit", TextLength: 120, WorkerCount: 12, Alignment: 5},
		{Name: "AlignedSplitWithPartialTail", TextLength: 123, WorkerCount: 12, Alignment: 5},
		{Name: "AlignmentLongerThanText", TextLength: 3, WorkerCount: 12, Alignment: 5},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inputText, err := helpers.GetRandomText(cipher.AlphabetText, test.TextLength)
			assert.Nil(t, err)

			chunks := splitChunks(inputText, test.WorkerCount, test.Alignment)

			rejoined := ""
			for i, chunk := range chunks {
				assert.NotEmpty(t, chunk)
				if test.Alignment > 1 && i < len(chunks)-1 {
					// every chunk except the last must end on an alignment
					// boundary
					assert.Equal(t, 0, len(chunk)%test.Alignment)
				}

				rejoined += chunk
			}

			assert.Equal(t, inputText, rejoined)
		})
	}
}
