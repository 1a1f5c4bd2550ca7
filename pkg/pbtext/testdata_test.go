package pbtext_test

// sampleDocument exercises quoting, repeated blocks, repeated attributes,
// extension-style names and delimiters embedded in values.
const sampleDocument = `root_attr_1: "root_attr_1_val"
root_attr_2: 21342345
root_message {
  favourite_number: 7
  jedi_phrases: "- These aren't the droids you're looking for!"
  repeated_sub_message {
    type: 1
    time: 638427648
    repeated_sub_message: 74373
    repeated_sub_message: 2341
  }
  repeated_sub_message {
    type: 2
    repeated_sub_message: 74373
    repeated_sub_message: 2341
  }
}
root_message2 {
  dirty_string: " ha-ha TAKE THIS: "quoted!" and this: { ` + "`" + ` } { ` + "`" + `{ ` + "`" + `{ }} hope your code died here "
  [Extension_1.extension_attribute2]: "extension attribute value 2"
}
root_attr_last_1: 21342345
[Extension_1.extension_attribute]: "extension attribute value"
root_attr_last_2: "last_sting_attr"
`

// scenarioDocument is a compact single-line-opening layout.
const scenarioDocument = "root { a: 1\n b { x: 5\n x: 6\n }\n b { x: 7\n }\n}"
