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

package main

import (
	"fmt"
	"os"

	"github.com/dgiuliani/sdsim/card"
	"github.com/dgiuliani/sdsim/disk"
	"github.com/dgiuliani/sdsim/inspector"
	"github.com/dgiuliani/sdsim/logger"
	"github.com/dgiuliani/sdsim/modalflag"
	"github.com/dgiuliani/sdsim/performance"
	"github.com/dgiuliani/sdsim/registers"
	"github.com/dgiuliani/sdsim/statsview"
	"github.com/dgiuliani/sdsim/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("REGISTERS", "DUMP", "IMAGE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "REGISTERS":
		err = regs(md)
	case "DUMP":
		err = dump(md)
	case "IMAGE":
		err = image(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// regs mode prints the 16 byte CID and CSD register images. Identity fields
// can be overridden from the command line; the CSD of the reference card is
// used throughout.
func regs(md *modalflag.Modes) error {
	md.NewMode()

	def := registers.NewCID()

	mid := md.AddUint("mid", uint(def.MID), "manufacturer ID (8 bits)")
	oid := md.AddUint("oid", uint(def.OID), "OEM/application ID (16 bits)")
	pnm := md.AddString("pnm", def.PNM, "product name (5 ASCII characters)")
	prv := md.AddUint("prv", uint(def.PRV), "product revision (8 bits)")
	psn := md.AddUint("psn", uint(def.PSN), "product serial number (32 bits)")
	mdt := md.AddUint("mdt", uint(def.MDT), "manufacturing date (12 bits)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	// range checks before the narrowing conversions. width validation
	// proper happens during encoding
	if *mid > 0xff || *prv > 0xff {
		return fmt.Errorf("mid and prv are 8 bit fields")
	}
	if *oid > 0xffff {
		return fmt.Errorf("oid is a 16 bit field")
	}
	if *psn > 0xffffffff {
		return fmt.Errorf("psn is a 32 bit field")
	}
	if *mdt > 0xfff {
		return fmt.Errorf("mdt is a 12 bit field")
	}

	cid := registers.CID{
		MID: uint8(*mid),
		OID: uint16(*oid),
		PNM: *pnm,
		PRV: uint8(*prv),
		PSN: uint32(*psn),
		MDT: uint16(*mdt),
	}

	crd, err := card.NewCardFrom(cid, registers.NewCSD())
	if err != nil {
		return err
	}

	fmt.Printf("CID: % 02x\n", crd.CID())
	fmt.Printf("CSD: % 02x\n", crd.CSD())
	fmt.Printf("RCA: %04x\n", card.RCA)

	return nil
}

// dump mode loads a dictionary file and shows what is on the disk.
func dump(md *modalflag.Modes) error {
	md.NewMode()

	block := md.AddInt("block", -1, "block address to dump (-1 lists addresses only)")
	interactive := md.AddBool("interactive", false, "page through blocks interactively")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("dictionary file required for %s mode", md)
	}

	dsk := disk.NewDisk()
	if err := dsk.ImportDictionary(md.GetArg(0)); err != nil {
		return err
	}

	fmt.Printf("%d blocks\n", dsk.NumBlocks())
	for _, a := range dsk.List() {
		fmt.Printf("  %d\n", a)
	}

	if *interactive {
		ins, err := inspector.NewInspector(dsk)
		if err != nil {
			return err
		}
		return ins.Run()
	}

	if *block >= 0 {
		return dsk.Dump(os.Stdout, uint32(*block))
	}

	return nil
}

// image mode converts a dictionary file to a raw contiguous disk image.
func image(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("dictionary file and image file required for %s mode", md)
	}

	dsk := disk.NewDisk()
	if err := dsk.ImportDictionary(md.GetArg(0)); err != nil {
		return err
	}

	return dsk.ExportImage(md.GetArg(1))
}

// perform mode measures block store throughput.
func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (time.ParseDuration format)")
	profile := md.AddString("profile", "none", "profile the run: none, cpu, mem, all")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	return performance.Check(os.Stdout, prf, *duration)
}
