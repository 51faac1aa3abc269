/*
Package contracts provides access to compiled DataHub contracts.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	datatokenDir  = "datatoken"
	membershipDir = "membership"
	taskDir       = "task"
	submissionDir = "submission"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about a compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	// Interdependent contracts receive script hashes of their collaborators
	// at deployment time, so the order below is a convention, not a
	// dependency chain. DHUB token goes first anyway since membership pulls
	// stakes from it right after initialization.
	contractDirs = []string{
		datatokenDir,
		membershipDir,
		taskDir,
		submissionDir,
	}
)

// Read returns the set of DataHub contracts stored in the given file system
// (e.g. the compiler output directory) in the order they are supposed to be
// deployed starting from the DHUB token.
func Read(_fs fs.FS) ([]Contract, error) {
	var res = make([]Contract, 0, len(contractDirs))

	for i := range contractDirs {
		c, err := readContractFromDir(_fs, contractDirs[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", contractDirs[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

func readContractFromDir(_fs fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS always uses "/" even on Windows, so filepath.Join() is not
	// applicable.
	fNEF, err := _fs.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := _fs.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
