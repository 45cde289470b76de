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

package cipher

import "strings"

// PolyShiftCipher is the vigenere variant: the i-th input symbol is rotated
// by the alphabet index of the (i mod key length)-th keyword letter.
type PolyShiftCipher struct {
	shifts []int
}

// NewPolyShiftCipher validates keyText as a non-empty, letters-only keyword.
// Keyword case is irrelevant; each letter contributes its alphabet index as
// a shift amount.
func NewPolyShiftCipher(keyText string) (*PolyShiftCipher, error) {
	if keyText == "" {
		return nil, newInvalidKeyError("vigenere", "key must not be empty")
	}

	shifts := make([]int, 0, len(keyText))
	for i := 0; i < len(keyText); i++ {
		letter := upperLetter(keyText[i])
		if letter == 0 {
			return nil, newInvalidKeyError("vigenere", "key %q may only contain letters", keyText)
		}

		index, _ := SymbolIndex(letter)
		shifts = append(shifts, index)
	}

	return &PolyShiftCipher{shifts: shifts}, nil
}

func (psc *PolyShiftCipher) ApplyCipher(text string, mode Mode) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		index, found := SymbolIndex(text[i])
		if !found {
			sb.WriteByte(text[i])
			continue
		}

		shift := psc.shifts[i%len(psc.shifts)]
		if mode == ModeDecrypt {
			shift = AlphabetSize - shift
		}

		sb.WriteByte(IndexSymbol((index + shift) % AlphabetSize))
	}

	return sb.String()
}

// ChunkAlignment is the keyword length.  A chunk boundary that is not a
// multiple of the keyword length would start a worker mid-keyword and its
// output would diverge from the sequential result.
func (psc *PolyShiftCipher) ChunkAlignment() int {
	return len(psc.shifts)
}

// upperLetter returns the uppercase form of an ASCII letter, or 0 when the
// byte is not a letter at all.
func upperLetter(b byte) byte {
	switch {
	case b >= 'A' && b <= 'Z':
		return b
	case b >= 'a' && b <= 'z':
		return b - ('a' - 'A')
	}

	return 0
}
