package utils

import (
	"errors"
	"fmt"
	"strings"
)

type AsciiFrameField struct {
	// Name of the field
	Name string

	// Units within the frame the field begins from
	Begin int

	// Field width
	Width int
}

// The last unit within the frame used by this field
func (f *AsciiFrameField) TopUnit() int {
	return f.PastTopUnit() - 1
}

// The first unit within the frame used by the next field
func (f *AsciiFrameField) PastTopUnit() int {
	return f.Begin + f.Width
}

type AsciiFrameUnitLayout uint

const (
	// Units increase left to right
	AsciiFrameUnitLayout_LeftToRight AsciiFrameUnitLayout = iota
	// Units increase right to left
	AsciiFrameUnitLayout_RightToLeft
)

var ErrInvalidAsciiFrame = errors.New("invalid ascii frame")

type asciiFrame struct {
	fields     []AsciiFrameField
	frameWidth int
	unit       string
	leftpad    int
	layout     AsciiFrameUnitLayout
}

// Writes text centered within length chars, filling both sides with the filler char
func writeCentered(text string, filler string, length int, builder *strings.Builder) {
	left := (length - len(text)) / 2
	right := length - len(text) - left

	builder.WriteString(strings.Repeat(filler, left))
	builder.WriteString(text)
	builder.WriteString(strings.Repeat(filler, right))
}

func (f *asciiFrame) Draw() string {
	const (
		body_splitter   string = "|"
		border_splitter string = "+"
		border_body     string = "-"
		arrow_tip_left  string = "<-"
		arrow_body      string = "-"
		arrow_tip_right string = "->"
		arrow_splitter  string = " "
	)

	fields := f.fields
	if f.layout == AsciiFrameUnitLayout_RightToLeft {
		fields = Reversed(fields)
	}

	leftpad := strings.Repeat(" ", f.leftpad)

	var indices_row, border_row, body_row, widths_row strings.Builder

	indices_row.WriteString(leftpad)
	border_row.WriteString(leftpad)
	body_row.WriteString(leftpad)
	widths_row.WriteString(leftpad)

	for _, field := range fields {
		index := fmt.Sprint(field.Begin)
		if f.layout == AsciiFrameUnitLayout_RightToLeft {
			index = fmt.Sprint(field.TopUnit())
		}

		name := fmt.Sprintf(" %v ", field.Name)
		width := fmt.Sprintf(" %v %v ", field.Width, f.unit)
		cell := Max([]int{len(index), len(name), len(arrow_tip_left) + len(width) + len(arrow_tip_right)})

		indices_row.WriteString(index)
		indices_row.WriteString(strings.Repeat(" ", cell+1-len(index)))
		border_row.WriteString(border_splitter)
		border_row.WriteString(strings.Repeat(border_body, cell))
		body_row.WriteString(body_splitter)
		writeCentered(name, " ", cell, &body_row)
		widths_row.WriteString(arrow_splitter)
		widths_row.WriteString(arrow_tip_left)
		writeCentered(width, arrow_body, cell-len(arrow_tip_left)-len(arrow_tip_right), &widths_row)
		widths_row.WriteString(arrow_tip_right)
	}

	if f.layout == AsciiFrameUnitLayout_LeftToRight {
		indices_row.WriteString(fmt.Sprint(f.frameWidth - 1))
	} else {
		indices_row.WriteString("0")
	}

	border_row.WriteString(border_splitter)
	body_row.WriteString(body_splitter)
	widths_row.WriteString(arrow_splitter)

	var result strings.Builder

	for _, row := range []*strings.Builder{&indices_row, &border_row, &body_row, &border_row, &widths_row} {
		result.WriteString(row.String())
		result.WriteString("\n")
	}

	return result.String()
}

func fillAsciiFrameGaps(fields []AsciiFrameField, frameWidth int) ([]AsciiFrameField, error) {
	result := make([]AsciiFrameField, 0, len(fields))
	currentUnit := 0

	for _, field := range fields {
		if field.Width <= 0 {
			return nil, MakeError(ErrInvalidAsciiFrame, "field '%v' has invalid width %v", field.Name, field.Width)
		}

		if field.Begin > currentUnit {
			result = append(result, AsciiFrameField{
				Name:  "(unused)",
				Begin: currentUnit,
				Width: field.Begin - currentUnit,
			})
		} else if field.Begin < currentUnit {
			return nil, MakeError(ErrInvalidAsciiFrame, "field '%v' overlaps the previous field, make sure fields are sorted by position and are not overlapping", field.Name)
		}

		result = append(result, field)

		currentUnit = field.PastTopUnit()
	}

	if currentUnit > frameWidth {
		return nil, MakeError(ErrInvalidAsciiFrame, "fields take %v units but the frame is only %v units wide", currentUnit, frameWidth)
	}

	if currentUnit < frameWidth {
		result = append(result, AsciiFrameField{
			Name:  "(unused)",
			Begin: currentUnit,
			Width: frameWidth - currentUnit,
		})
	}

	return result, nil
}

// Prints an ascii diagram of a binary frame composed of contiguous fields of different unit lenghts
func AsciiFrame(fields []AsciiFrameField, frameWidth int, unit string, layout AsciiFrameUnitLayout, leftpad int) (string, error) {
	allFields, err := fillAsciiFrameGaps(fields, frameWidth)
	if err != nil {
		return "", err
	}

	frame := asciiFrame{
		fields:     allFields,
		frameWidth: frameWidth,
		unit:       unit,
		leftpad:    leftpad,
		layout:     layout,
	}

	return frame.Draw(), nil
}
