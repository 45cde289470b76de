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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/veiltext/veil/cipher"
)

// decryptCmd represents the decrypt command.
// Note that playfair decryption returns the padded form of the original
// message; the padding letters inserted during encryption are not stripped.
var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypts text that was encrypted with the same classical cipher and key",
	Long:  "Decrypts text that was encrypted with the same classical cipher and key",
	Run: func(cmd *cobra.Command, args []string) {
		runCipherRequest(cipher.ModeDecrypt, localDecryptCommandVals)
	},
}

var localDecryptCommandVals = &cipherCommandVals{}

func init() {
	rootCmd.AddCommand(decryptCmd)
	addCipherFlags(decryptCmd, localDecryptCommandVals)
}
