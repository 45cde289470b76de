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
	"fmt"
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
	"gopkg.in/yaml.v3"
)

const (
	VeilGlobalFolderName = "Veil"
	VeilConfigFileName   = "config.yaml"
)

// GlobalConfig is loaded once during bootstrap and read everywhere else.
var GlobalConfig *ConfigHelper

type ConfigInfo struct {
	// DefaultCipher is the cipher used when no --cipher flag is supplied.
	// Should be one of: caesar, playfair, vigenere.
	DefaultCipher string `yaml:"defaultCipher"`

	// WorkerCount is the number of concurrent workers used for chunked runs.
	WorkerCount int `yaml:"workerCount"`
}

func (configIn *ConfigInfo) Clone() *ConfigInfo {
	return &ConfigInfo{
		DefaultCipher: configIn.DefaultCipher,
		WorkerCount:   configIn.WorkerCount,
	}
}

type YAMLConfig struct {
	Config *ConfigInfo `yaml:"VeilSettings"`
}

type ConfigHelper struct {
	Config *ConfigInfo
}

func NewConfigHelper() *ConfigHelper {
	return &ConfigHelper{}
}

func NewConfigHelperFromConfig(config *ConfigInfo) *ConfigHelper {
	nc := NewConfigHelper()
	nc.Config = config.Clone()
	return nc
}

// NewDefaultConfig returns the built-in settings used when no config file
// exists yet.
func NewDefaultConfig() *ConfigInfo {
	return &ConfigInfo{
		DefaultCipher: "caesar",
		WorkerCount:   12,
	}
}

func GetConfigPath() (string, error) {
	configPath := configdir.LocalConfig(VeilGlobalFolderName)
	err := configdir.MakePath(configPath)
	if err != nil {
		return "", fmt.Errorf("failed validating existance of config paths: %w", err)
	}

	return configPath, nil
}

// LoadConfig reads the settings file from the user config dir.  A missing
// file is not an error; the built-in defaults are used instead.
func (ch *ConfigHelper) LoadConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configFilePath := filepath.Join(configPath, VeilConfigFileName)
	configBytes, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			ch.Config = NewDefaultConfig()
			return nil
		}

		return fmt.Errorf("unable to read config file: %w", err)
	}

	yamlConfig := &YAMLConfig{}
	err = yaml.Unmarshal(configBytes, yamlConfig)
	if err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	if yamlConfig.Config == nil {
		ch.Config = NewDefaultConfig()
		return nil
	}

	ch.Config = yamlConfig.Config

	// fill in anything an older or hand-edited file left out
	if ch.Config.DefaultCipher == "" {
		ch.Config.DefaultCipher = NewDefaultConfig().DefaultCipher
	}

	if ch.Config.WorkerCount < 1 {
		ch.Config.WorkerCount = NewDefaultConfig().WorkerCount
	}

	return nil
}

// WriteConfig persists the current settings to the user config dir.
func (ch *ConfigHelper) WriteConfig() error {
	if ch.Config == nil {
		ch.Config = NewDefaultConfig()
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	yamlConfig := &YAMLConfig{Config: ch.Config}
	configBytes, err := yaml.Marshal(yamlConfig)
	if err != nil {
		return fmt.Errorf("unable to build config yaml: %w", err)
	}

	configFilePath := filepath.Join(configPath, VeilConfigFileName)
	err = os.WriteFile(configFilePath, configBytes, 0644)
	if err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	return nil
}
