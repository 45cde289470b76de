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

package helpers

import cryptorand "crypto/rand"

// GetRandomText returns requestedCount random symbols drawn from symbolSet.
// Mostly useful for building large test inputs.
func GetRandomText(symbolSet string, requestedCount int) (string, error) {
	if requestedCount == 0 || len(symbolSet) == 0 {
		return "", nil
	}

	randomBytes := make([]byte, requestedCount)
	_, err := cryptorand.Read(randomBytes)
	if err != nil {
		return "", err
	}

	textBytes := make([]byte, requestedCount)
	for i, b := range randomBytes {
		textBytes[i] = symbolSet[int(b)%len(symbolSet)]
	}

	return string(textBytes), nil
}
