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

import "strings"

// NormalizeText reduces raw input to the engine's transform domain: letters
// are upper cased, digits pass through, everything else is dropped.  The
// cipher and engine packages assume their input has been through this.
func NormalizeText(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))
	for _, r := range input {
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - ('a' - 'A'))
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
