package isa

// Represents the branch condition of a REGIMM instruction, encoded in the rt field
type BranchCondition uint8

const (
	BranchCondition_BLTZ   BranchCondition = 0x00
	BranchCondition_BGEZ   BranchCondition = 0x01
	BranchCondition_BLTZAL BranchCondition = 0x10
	BranchCondition_BGEZAL BranchCondition = 0x11
)

func (c BranchCondition) String() string {
	return BranchConditions.format(c)
}

var BranchConditions MnemonicTable[BranchCondition] = NewMnemonicTable(
	TargetField,
	ErrUnrecognizedBranchCondition,
	map[BranchCondition]string{
		BranchCondition_BLTZ:   "BLTZ",
		BranchCondition_BGEZ:   "BGEZ",
		BranchCondition_BLTZAL: "BLTZAL",
		BranchCondition_BGEZAL: "BGEZAL",
	},
)
