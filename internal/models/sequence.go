package models

// SequenceCounter 流水號計數器。每個命名序列一份文件，_id 即序列名稱
// （例如 employee:A1IT、ticket:2024-11、company），Seq 只透過 $inc 遞增。
type SequenceCounter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}
