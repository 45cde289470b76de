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

import "fmt"

// InvalidKeyError is returned from the variant constructors when the supplied
// key text fails that variant's validation rules.  It is never produced after
// construction succeeds; the transform and executor stages have no error paths.
type InvalidKeyError struct {
	CipherName string
	Reason     string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid %s key: %s", e.CipherName, e.Reason)
}

func newInvalidKeyError(cipherName, reasonFormat string, a ...any) *InvalidKeyError {
	return &InvalidKeyError{
		CipherName: cipherName,
		Reason:     fmt.Sprintf(reasonFormat, a...),
	}
}
