// This file is part of gbdumper.
//
// gbdumper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbdumper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbdumper.  If not, see <https://www.gnu.org/licenses/>.

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/logger"
)

// the switchable ROM window. banks other than zero are usually visible here
const (
	HomeWindow       = 0x0000
	SwitchableWindow = 0x4000
)

// the cartridge RAM window
const (
	RAMOrigin = 0xa000
	RAMMemtop = 0xbfff
)

// DriverState is the bank state of the cartridge as last set by the Driver.
type DriverState struct {
	ROMBank    int
	RAMBank    int
	RAMEnabled bool

	// banking mode of controllers with a mode register. the mode is unknown
	// until the driver first writes to the register
	ModeKnown bool
	RAMMode   bool
}

func (s DriverState) String() string {
	ram := "disabled"
	if s.RAMEnabled {
		ram = "enabled"
	}
	return fmt.Sprintf("ROM bank: %d, RAM bank: %d, RAM %s", s.ROMBank, s.RAMBank, ram)
}

// Driver is the only type that writes to the control registers of the memory
// bank controller. The DriverState is updated only when a bus write succeeds.
//
// A Driver is not safe for concurrent use. Only one Driver should exist for a
// Bus.
type Driver struct {
	bus      bus.Bus
	mbc      MBCType
	rule     BankSwitchRule
	romBanks int
	timing   Timing

	state DriverState

	// the address at which the selected ROM bank can be read
	romWindow uint16
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The number of ROM banks is required to decide how banks are selected on
// some controllers.
func NewDriver(b bus.Bus, mbc MBCType, romBanks int, timing Timing) *Driver {
	return &Driver{
		bus:      b,
		mbc:      mbc,
		rule:     RuleFor(mbc),
		romBanks: romBanks,
		timing:   timing,
		state: DriverState{
			ROMBank: 1,
		},
		romWindow: SwitchableWindow,
	}
}

func (d *Driver) String() string {
	return fmt.Sprintf("%s: %s", d.mbc, d.state)
}

// MBC returns the controller type the driver was created for.
func (d *Driver) MBC() MBCType {
	return d.mbc
}

// Rule returns the bank switching rule in use.
func (d *Driver) Rule() BankSwitchRule {
	return d.rule
}

// State returns a copy of the current driver state.
func (d *Driver) State() DriverState {
	return d.state
}

// ROMWindow returns the address at which the currently selected ROM bank is
// visible.
func (d *Driver) ROMWindow() uint16 {
	return d.romWindow
}

// write a value to a control register
func (d *Driver) writeRegister(addr uint16, value uint8) error {
	if err := d.bus.SetAddr(addr); err != nil {
		return busError(err)
	}
	if err := d.bus.WriteByte(value); err != nil {
		return busError(err)
	}
	return nil
}

// EnableRAM issues the RAM enable sequence. Does nothing for controllers
// without a RAM enable register.
func (d *Driver) EnableRAM() error {
	if !d.rule.HasRAMEnable {
		return nil
	}
	if err := d.writeRegister(d.rule.RAMEnable, d.rule.RAMEnableValue); err != nil {
		return err
	}
	d.state.RAMEnabled = true
	logger.Logf(logger.Allow, "driver", "RAM enabled (%s)", d.mbc)
	return nil
}

// DisableRAM issues the RAM disable sequence. Does nothing for controllers
// without a RAM enable register.
func (d *Driver) DisableRAM() error {
	if !d.rule.HasRAMEnable {
		return nil
	}
	if err := d.writeRegister(d.rule.RAMEnable, d.rule.RAMDisableValue); err != nil {
		return err
	}
	d.state.RAMEnabled = false
	logger.Logf(logger.Allow, "driver", "RAM disabled (%s)", d.mbc)
	return nil
}

// SetBankingMode sets the banking mode register. Returns an
// UnsupportedOperation error for controllers without a mode register.
func (d *Driver) SetBankingMode(ramMode bool) error {
	if !d.rule.HasModeRegister {
		return curated.Errorf(UnsupportedOperation, "banking mode", d.mbc)
	}

	v := d.rule.ModeROM
	if ramMode {
		v = d.rule.ModeRAM
	}
	if err := d.writeRegister(d.rule.ModeRegister, v); err != nil {
		return err
	}

	d.state.ModeKnown = true
	d.state.RAMMode = ramMode
	return nil
}

// make sure the banking mode is as required. the register is only written if
// the mode is different or unknown
func (d *Driver) ensureMode(ramMode bool) error {
	if d.state.ModeKnown && d.state.RAMMode == ramMode {
		return nil
	}
	return d.SetBankingMode(ramMode)
}

// SelectROMBank selects the ROM bank to be visible in the ROM window (see
// ROMWindow()). Bank zero can not be selected and bank one will be selected
// instead.
//
// Returns an UnsupportedOperation error if the controller has no ROM banking
// and a bank other than zero or one is requested.
func (d *Driver) SelectROMBank(bank int) error {
	if bank == 0 {
		bank = 1
	}

	if !d.rule.HasROMBanking {
		if bank > 1 {
			return curated.Errorf(UnsupportedOperation, fmt.Sprintf("ROM bank %d", bank), d.mbc)
		}
		d.state.ROMBank = bank
		d.romWindow = SwitchableWindow
		return nil
	}

	window := uint16(SwitchableWindow)

	if d.rule.ROMUpperViaRAMBank && d.romBanks > d.rule.UpperBitsAbove {
		upper := uint8(bank>>d.rule.UpperBitsShift) & d.rule.UpperBitsMask
		low := uint8(bank) & d.rule.ROMBankMask

		if low == 0 {
			// banks with zero in the low bits can't be seen in the switchable
			// window. in RAM mode the upper bits apply to the home window
			// instead and the bank can be read there
			if err := d.ensureMode(true); err != nil {
				return err
			}
			if err := d.writeRegister(d.rule.RAMBank, upper); err != nil {
				return err
			}
			d.state.RAMBank = int(upper)
			window = HomeWindow
		} else {
			if err := d.ensureMode(false); err != nil {
				return err
			}
			if err := d.writeRegister(d.rule.RAMBank, upper); err != nil {
				return err
			}
			d.state.RAMBank = int(upper)
			if err := d.writeRegister(d.rule.ROMBankLow, low); err != nil {
				return err
			}
		}
	} else {
		if err := d.writeRegister(d.rule.ROMBankLow, uint8(bank)&d.rule.ROMBankMask); err != nil {
			return err
		}
		if d.rule.HasROMBankHigh {
			high := uint8(bank>>d.rule.ROMBankHighShift) & d.rule.ROMBankHighMask
			if err := d.writeRegister(d.rule.ROMBankHigh, high); err != nil {
				return err
			}
		}
	}

	d.state.ROMBank = bank
	d.romWindow = window
	wait(d.timing.BankSwitch)

	return nil
}

// SelectRAMBank selects the RAM bank to be visible in the RAM window. For
// controllers with a mode register, the mode is set to RAM mode first.
//
// Returns an UnsupportedOperation error if the controller has no RAM banking.
// Callers should check the number of RAM banks rather than rely on this.
func (d *Driver) SelectRAMBank(bank int) error {
	if !d.rule.HasRAMBanking {
		return curated.Errorf(UnsupportedOperation, fmt.Sprintf("RAM bank %d", bank), d.mbc)
	}

	if d.rule.HasModeRegister {
		if err := d.ensureMode(true); err != nil {
			return err
		}
	}

	if err := d.writeRegister(d.rule.RAMBank, uint8(bank)&d.rule.RAMBankMask); err != nil {
		return err
	}

	d.state.RAMBank = bank
	wait(d.timing.BankSwitch)

	return nil
}

// SetAddr sets the address for the next call to ReadByte() or WriteByte(). It
// should not be used to write to control registers.
func (d *Driver) SetAddr(address uint16) error {
	if err := d.bus.SetAddr(address); err != nil {
		return busError(err)
	}
	return nil
}

// ReadByte reads from the most recently set address.
func (d *Driver) ReadByte() (byte, error) {
	v, err := d.bus.ReadByte()
	if err != nil {
		return 0, busError(err)
	}
	return v, nil
}

// WriteByte writes to the most recently set address.
func (d *Driver) WriteByte(data byte) error {
	if err := d.bus.WriteByte(data); err != nil {
		return busError(err)
	}
	return nil
}
