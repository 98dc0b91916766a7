package math

import (
	"github.com/globalsign/mgo/bson"
)

// GetBSON encodes x as a BSON string, round-tripping through IntFromString.
func (x Int) GetBSON() (interface{}, error) {
	return x.String(), nil
}

// SetBSON decodes a BSON string into x.
func (x *Int) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	v, err := IntFromString(s)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// GetBSON encodes d as a Decimal128, which preserves the scale: "1.50"
// round-trips with two fractional digits.
func (d Decimal) GetBSON() (interface{}, error) {
	return bson.ParseDecimal128(d.String())
}

// SetBSON decodes a Decimal128 into d.
func (d *Decimal) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return err
	}
	v, err := DecimalFromString(w.String())
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// GetBSON encodes r as a "p/q" BSON string.
func (r Rational) GetBSON() (interface{}, error) {
	return r.String(), nil
}

// SetBSON decodes a "p/q" BSON string into r.
func (r *Rational) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	v, err := RationalFromString(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
