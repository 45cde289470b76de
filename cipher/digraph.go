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

// digraphAlphabet is the I/J-merged letter set used to fill the key square.
// J never appears; it is folded into I in both keys and message text.
const digraphAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

const gridSide = 5

type gridCoord struct {
	row int
	col int
}

// DigraphCipher is the playfair variant: message letters are processed as
// pairs, each pair substituted through a 5x5 key square.
//
// The pairing step works over the whole message at once.  Padding letters are
// inserted between duplicate pair letters and after an odd trailing letter,
// which shifts every later pair boundary.  Because of that, this variant can
// never be split into chunks; ChunkAlignment reports 0.
//
// Padding is lossy on purpose: decrypting a ciphertext yields the padded form
// of the original message, not the original itself.
type DigraphCipher struct {
	grid   [gridSide][gridSide]byte
	coords map[byte]gridCoord
}

// NewDigraphCipher validates keyText as letters-only and builds the key
// square: the deduplicated key letters first, then the remaining letters of
// the I/J-merged alphabet in order.  An empty key is allowed and produces the
// square in plain alphabet order.
func NewDigraphCipher(keyText string) (*DigraphCipher, error) {
	var (
		seen     [256]bool
		sequence = make([]byte, 0, len(digraphAlphabet))
	)

	appendLetter := func(letter byte) {
		if letter == 'J' {
			letter = 'I'
		}

		if !seen[letter] {
			seen[letter] = true
			sequence = append(sequence, letter)
		}
	}

	for i := 0; i < len(keyText); i++ {
		letter := upperLetter(keyText[i])
		if letter == 0 {
			return nil, newInvalidKeyError("playfair", "key %q may only contain letters", keyText)
		}

		appendLetter(letter)
	}

	for i := 0; i < len(digraphAlphabet); i++ {
		appendLetter(digraphAlphabet[i])
	}

	dc := &DigraphCipher{coords: make(map[byte]gridCoord, len(digraphAlphabet))}
	for i, letter := range sequence {
		row, col := i/gridSide, i%gridSide
		dc.grid[row][col] = letter
		dc.coords[letter] = gridCoord{row: row, col: col}
	}

	return dc, nil
}

func (dc *DigraphCipher) ApplyCipher(text string, mode Mode) string {
	// one step forward for encrypt, one step back for decrypt, expressed as
	// a wrap-safe positive offset
	step := 1
	if mode == ModeDecrypt {
		step = gridSide - 1
	}

	pairs := dc.buildDigraphs(text)

	var sb strings.Builder
	sb.Grow(len(pairs) * 2)
	for _, pair := range pairs {
		first := dc.coords[pair[0]]
		second := dc.coords[pair[1]]

		switch {
		case first.row == second.row:
			sb.WriteByte(dc.grid[first.row][(first.col+step)%gridSide])
			sb.WriteByte(dc.grid[second.row][(second.col+step)%gridSide])
		case first.col == second.col:
			sb.WriteByte(dc.grid[(first.row+step)%gridSide][first.col])
			sb.WriteByte(dc.grid[(second.row+step)%gridSide][second.col])
		default:
			// rectangle case: swap columns, keep rows.  Self-inverse, so
			// mode plays no part here.
			sb.WriteByte(dc.grid[first.row][second.col])
			sb.WriteByte(dc.grid[second.row][first.col])
		}
	}

	return sb.String()
}

// ChunkAlignment is 0: the pairing and padding pass needs the whole message.
func (dc *DigraphCipher) ChunkAlignment() int {
	return 0
}

// buildDigraphs performs the whole-message pairing pass: fold J into I, drop
// symbols that have no key square cell (the digits), split into pairs with a
// padding letter between duplicates, and complete an odd final pair.
func (dc *DigraphCipher) buildDigraphs(text string) [][2]byte {
	letters := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		letter := text[i]
		if letter == 'J' {
			letter = 'I'
		}

		if _, found := dc.coords[letter]; !found {
			continue
		}

		letters = append(letters, letter)
	}

	pairs := make([][2]byte, 0, len(letters)/2+1)
	for i := 0; i < len(letters); {
		first := letters[i]

		if i+1 == len(letters) {
			// odd trailing letter: complete the final pair with Z, or X
			// when the letter itself is Z
			pad := byte('Z')
			if first == 'Z' {
				pad = 'X'
			}

			pairs = append(pairs, [2]byte{first, pad})
			break
		}

		if letters[i+1] == first {
			// duplicate pair letters: insert X (Q when the letter is X)
			// and leave the second occurrence for the next pair
			pad := byte('X')
			if first == 'X' {
				pad = 'Q'
			}

			pairs = append(pairs, [2]byte{first, pad})
			i++
			continue
		}

		pairs = append(pairs, [2]byte{first, letters[i+1]})
		i += 2
	}

	return pairs
}
