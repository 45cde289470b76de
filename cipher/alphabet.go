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

// AlphabetText is the full transform domain for all cipher variants: the
// uppercase letters followed by the decimal digits.  Symbol order matters,
// since every rotation-style cipher works on positions within this sequence.
const AlphabetText = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AlphabetSize is 36
const AlphabetSize = len(AlphabetText)

// alphabetIndexes is built once at process start and never mutated after that.
var alphabetIndexes = buildAlphabetIndexes()

func buildAlphabetIndexes() map[byte]int {
	indexes := make(map[byte]int, AlphabetSize)
	for i := 0; i < AlphabetSize; i++ {
		indexes[AlphabetText[i]] = i
	}

	return indexes
}

// SymbolIndex returns the alphabet position of symbol, with found reporting
// whether symbol is part of the alphabet at all.
func SymbolIndex(symbol byte) (index int, found bool) {
	index, found = alphabetIndexes[symbol]
	return index, found
}

// IndexSymbol maps an alphabet position back to its symbol.  The index must
// already be reduced mod AlphabetSize by the caller.
func IndexSymbol(index int) byte {
	return AlphabetText[index]
}
