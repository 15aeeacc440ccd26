package hwio

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// regInfo locates a register within a bank.
type regInfo struct {
	regPtr any
	offset uint32
}

type tagInfo struct {
	bank      int
	offset    uint32
	hasOffset bool
	reset     uint64
	rwmask    uint64
	hasRwmask bool
	size      int
	vsize     int
	readonly  bool
	writeonly bool
	rcb       string // read callback method name, empty if none
	wcb       string // write callback method name, empty if none
}

func parseUint(key, val string) (uint64, error) {
	v, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, val, err)
	}
	return v, nil
}

func parseTag(field reflect.StructField) (tagInfo, error) {
	var ti tagInfo
	tag, ok := field.Tag.Lookup("hwio")
	if !ok {
		return ti, nil
	}

	upper := strings.ToUpper(field.Name)
	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, val, _ := strings.Cut(opt, "=")

		var err error
		var v uint64
		switch key {
		case "bank":
			v, err = parseUint(key, val)
			ti.bank = int(v)
		case "offset":
			ti.hasOffset = true
			v, err = parseUint(key, val)
			if v > 0xFFFFFFFF {
				err = fmt.Errorf("offset %#x out of range", v)
			}
			ti.offset = uint32(v)
		case "reset":
			ti.reset, err = parseUint(key, val)
		case "rwmask":
			ti.rwmask, err = parseUint(key, val)
			ti.hasRwmask = true
		case "size":
			v, err = parseUint(key, val)
			ti.size = int(v)
		case "vsize":
			v, err = parseUint(key, val)
			ti.vsize = int(v)
		case "readonly":
			ti.readonly = true
		case "writeonly":
			ti.writeonly = true
		case "rcb":
			ti.rcb = "Read" + upper
			if val != "" {
				ti.rcb = val
			}
		case "wcb":
			ti.wcb = "Write" + upper
			if val != "" {
				ti.wcb = val
			}
		default:
			err = fmt.Errorf("unknown option %q", key)
		}
		if err != nil {
			return ti, fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	if ti.readonly && ti.writeonly {
		return ti, fmt.Errorf("field %s: both readonly and writeonly", field.Name)
	}
	return ti, nil
}

func (ti *tagInfo) flags() RWFlags {
	switch {
	case ti.readonly:
		return ReadOnlyFlag
	case ti.writeonly:
		return WriteOnlyFlag
	}
	return ReadWriteFlag
}

// method returns the method named name on bank, converted to the function
// type of ptr.
func method(bank reflect.Value, name string, ptr any) error {
	m := bank.MethodByName(name)
	if !m.IsValid() {
		return fmt.Errorf("callback method %s not found on %s", name, bank.Type())
	}
	dst := reflect.ValueOf(ptr).Elem()
	if !m.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("callback method %s has type %s, want %s", name, m.Type(), dst.Type())
	}
	dst.Set(m)
	return nil
}

func checkWidth(name string, ti *tagInfo, limit uint64) error {
	if ti.reset > limit {
		return fmt.Errorf("field %s: reset value %#x too big", name, ti.reset)
	}
	if ti.rwmask > limit {
		return fmt.Errorf("field %s: rwmask %#x too big", name, ti.rwmask)
	}
	if !ti.hasRwmask {
		ti.rwmask = limit
	}
	return nil
}

func initReg(bank reflect.Value, field reflect.StructField, fv reflect.Value) error {
	ti, err := parseTag(field)
	if err != nil {
		return err
	}

	switch r := fv.Addr().Interface().(type) {
	case *Reg8:
		if err := checkWidth(field.Name, &ti, 0xFF); err != nil {
			return err
		}
		r.Name = field.Name
		r.Value = uint8(ti.reset)
		r.RoMask = ^uint8(ti.rwmask)
		r.Flags = ti.flags()
		if ti.rcb != "" {
			if err := method(bank, ti.rcb, &r.ReadCb); err != nil {
				return err
			}
		}
		if ti.wcb != "" {
			if err := method(bank, ti.wcb, &r.WriteCb); err != nil {
				return err
			}
		}

	case *Reg16:
		if err := checkWidth(field.Name, &ti, 0xFFFF); err != nil {
			return err
		}
		r.Name = field.Name
		r.Value = uint16(ti.reset)
		r.RoMask = ^uint16(ti.rwmask)
		r.Flags = ti.flags()
		if ti.rcb != "" {
			if err := method(bank, ti.rcb, &r.ReadCb); err != nil {
				return err
			}
		}
		if ti.wcb != "" {
			if err := method(bank, ti.wcb, &r.WriteCb); err != nil {
				return err
			}
		}

	case *Mem:
		r.Name = field.Name
		if ti.size != 0 && r.Data == nil {
			if !IsPow2(ti.size) {
				return fmt.Errorf("field %s: size %#x is not pow2", field.Name, ti.size)
			}
			r.Data = make([]byte, ti.size)
		}
		r.VSize = ti.vsize
		if r.VSize == 0 {
			r.VSize = len(r.Data)
		}
		if ti.readonly {
			r.Flags |= MemFlagReadOnly
		}

	case *Device:
		r.Name = field.Name
		r.Size = ti.size
		r.Flags = ti.flags()
		if ti.rcb != "" {
			if err := method(bank, ti.rcb, &r.ReadCb); err != nil {
				return err
			}
		}
		if ti.wcb != "" {
			if err := method(bank, ti.wcb, &r.WriteCb); err != nil {
				return err
			}
		}
	}
	return nil
}

var errNotStructPtr = errors.New("bank must be a pointer to struct")

// InitRegs initializes all the registers, memories and devices declared in
// the struct pointed by bank, following their "hwio" struct tags: names,
// reset values, masks, access flags and callbacks.
func InitRegs(bank any) error {
	val := reflect.ValueOf(bank)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return errNotStructPtr
	}

	s := val.Elem()
	for i := range s.NumField() {
		field := s.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		switch field.Type {
		case reflect.TypeFor[Reg8](), reflect.TypeFor[Reg16](),
			reflect.TypeFor[Mem](), reflect.TypeFor[Device]():
			if err := initReg(val, field, s.Field(i)); err != nil {
				return fmt.Errorf("hwio: %s: %w", s.Type(), err)
			}
		}
	}
	return nil
}

// MustInitRegs is like InitRegs but panics on error. Tags are static so an
// error here is always a programming error.
func MustInitRegs(bank any) {
	if err := InitRegs(bank); err != nil {
		panic(err)
	}
}

// bankGetRegs returns the registers of bank belonging to bank number
// bankNum, in declaration order.
func bankGetRegs(bank any, bankNum int) ([]regInfo, error) {
	val := reflect.ValueOf(bank)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return nil, errNotStructPtr
	}

	var regs []regInfo
	s := val.Elem()
	for i := range s.NumField() {
		field := s.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		ti, err := parseTag(field)
		if err != nil {
			return nil, fmt.Errorf("hwio: %s: %w", s.Type(), err)
		}
		if !ti.hasOffset || ti.bank != bankNum {
			continue
		}
		regs = append(regs, regInfo{
			regPtr: s.Field(i).Addr().Interface(),
			offset: ti.offset,
		})
	}
	return regs, nil
}
