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

import (
	"errors"
	"fmt"
)

// FormatErrorOutputs renders a wrapped error chain for display.  A single
// level error is shown inline; deeper chains are indented one level per wrap.
func FormatErrorOutputs(err error) string {
	errList := []error{}

	unwrapped := errors.Unwrap(err)
	for {
		if unwrapped == nil {
			break
		}

		errList = append(errList, unwrapped)
		unwrapped = errors.Unwrap(unwrapped)
	}

	if len(errList) <= 1 {
		return fmt.Sprintf(": %v", err)
	}

	var (
		indent  = "  "
		trailer = "..."
		errText = "...\n"
	)

	for i := 0; i < len(errList); i++ {
		if i == len(errList)-1 {
			trailer = ""
		}

		errText += fmt.Sprintf("%s%v%s\n", indent, errList[i], trailer)
		indent += "  "
	}

	return errText
}
