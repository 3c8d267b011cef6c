// This file is part of sdsim.
//
// sdsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdsim.  If not, see <https://www.gnu.org/licenses/>.

// Package performance measures the throughput of the block store and, on
// request, produces CPU and memory profiles of the measurement run.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/dgiuliani/sdsim/card"
	"github.com/dgiuliani/sdsim/curated"
	"github.com/dgiuliani/sdsim/disk"
)

// number of distinct block addresses the measurement loop works over. large
// enough to exercise the sparse map realistically, small enough that memory
// use stays flat.
const workingSet = 4096

// Check measures the throughput of the block store by driving write/read
// pairs at a fresh card for the specified duration. Results are written to
// output.
//
// The duration argument takes the format of time.ParseDuration.
func Check(output io.Writer, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	crd, err := card.NewCard()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	content := make([]byte, disk.BlockSize)
	for i := range content {
		content[i] = byte(i)
	}

	var ops int

	runner := func() error {
		expired := time.After(dur)

		for {
			select {
			case <-expired:
				return nil
			default:
			}

			addr := uint32(ops % workingSet)
			if err := crd.Disk.Write(addr, content); err != nil {
				return err
			}
			_ = crd.Disk.Read(addr)
			ops++
		}
	}

	err = profileRun(profile, runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fmt.Fprintf(output, "%d write/read pairs in %v\n", ops, dur)
	fmt.Fprintf(output, "%.0f blocks/sec\n", float64(ops)/dur.Seconds())

	return nil
}
